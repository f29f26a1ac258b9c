// Package coordinator runs the serving half of the distributed render: it
// slices the image into tasks, hands them to workers over rpc, assembles the
// returned gray pixels and gives the finished buffer to the encoder.
package coordinator

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/AhiyaHiya/MandelbrotSet/encode"
	"github.com/AhiyaHiya/MandelbrotSet/mandelbrot"
	"github.com/AhiyaHiya/MandelbrotSet/misc"
	"github.com/AhiyaHiya/MandelbrotSet/task"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

type Coordinator struct {
	clients            map[string]*multirpc.TcpClient
	image              *mandelbrot.Image
	logger             bslogger.Logger
	mutex              sync.Mutex
	pixelsLeft         int
	settings           settings
	taskCount          uint
	taskGeneratedCount uint
	taskIngestedCount  uint
	tasksDone          chan task.Task
	tasksHandedOut     map[string]map[uint]task.Task // tasks each worker has checked out
	tasksTodo          chan task.Task
	workerWait         *sync.WaitGroup

	Server multirpc.TcpServer
}

func NewCoordinator(settingsFile string) *Coordinator {
	settings := NewSettings(settingsFile)

	coordinator := &Coordinator{
		clients:        make(map[string]*multirpc.TcpClient),
		image:          mandelbrot.NewImage(settings.Render.PixelsWide),
		logger:         bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		pixelsLeft:     settings.Render.PixelsWide * settings.Render.PixelsWide,
		settings:       settings,
		tasksDone:      make(chan task.Task, 1000),
		tasksHandedOut: make(map[string]map[uint]task.Task),
		tasksTodo:      make(chan task.Task, 1000),
		workerWait:     &sync.WaitGroup{},
	}

	// Determine the number of tasks that will be generated so the coordinator
	// knows when it has ingested everything and can shut down
	switch settings.TaskGeneration {
	case task.Row, task.Column:
		coordinator.taskCount = uint(settings.Render.PixelsWide)
	case task.Image:
		coordinator.taskCount = 1
	default:
		coordinator.logger.Fatalf("Unknown generation type: %d", settings.TaskGeneration)
	}

	// Copy the settings to the save path so the run can be duplicated in the future
	misc.CheckError(settings.Backup(), coordinator.logger, misc.Fatal)

	// Start up the rpc tcp server to allow workers to communicate with the coordinator
	coordinator.Server = multirpc.NewTcpServer(coordinator, settings.ServerAddress, "CoordinatorServer")
	misc.CheckError(coordinator.Server.Run(), coordinator.logger, misc.Fatal)

	go coordinator.tickers()
	go coordinator.generateTasks()
	go coordinator.ingestTasks()

	return coordinator
}

// Wait blocks until the render is complete and the server has shut down.
func (c *Coordinator) Wait() {
	c.Server.Wait()
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			for _, v := range c.clientSnapshot() {
				var reply bool
				err := v.Call("Worker.RollCall", junk, &reply)
				if err != nil {
					// Cannot communicate with the worker
					c.logger.Warningf("Worker %s missed roll call: %s", v.Name(), err)

					// Remove worker from pool and requeue its tasks
					var nothing misc.Nothing
					misc.CheckError(c.DeRegisterWorker(v.Name(), &nothing), c.logger, misc.Warning)
				}
			}

		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.logger.Infof("Tasks [Generated: %d] [Ingested: %d/%d] | Pixels [Left: %d]", c.taskGeneratedCount, c.taskIngestedCount, c.taskCount, c.pixelsLeft)
		}
	}
}

// clientSnapshot copies the current worker clients out under the mutex so the
// roll call can dial them without holding the lock while RegisterWorker and
// DeRegisterWorker mutate the map from rpc goroutines.
func (c *Coordinator) clientSnapshot() []*multirpc.TcpClient {
	c.mutex.Lock()
	clients := make([]*multirpc.TcpClient, 0, len(c.clients))
	for _, v := range c.clients {
		clients = append(clients, v)
	}
	c.mutex.Unlock()
	return clients
}

func (c *Coordinator) generateTasks() {
	c.logger.Info("Generating tasks")

	var elapsedTime time.Duration
	var startTime = time.Now()
	side := c.settings.Render.PixelsWide

	switch c.settings.TaskGeneration {
	case task.Row:
		for row := 0; row < side; row++ {
			taskTodo := task.NewTask(c.taskGeneratedCount)
			taskTodo.AddTasksForRow(row, side)
			c.tasksTodo <- taskTodo
			c.taskGeneratedCount++
		}
	case task.Column:
		for column := 0; column < side; column++ {
			taskTodo := task.NewTask(c.taskGeneratedCount)
			taskTodo.AddTasksForColumn(column, side)
			c.tasksTodo <- taskTodo
			c.taskGeneratedCount++
		}
	case task.Image:
		taskTodo := task.NewTask(c.taskGeneratedCount)
		taskTodo.AddTasksForImage(side, side)
		c.tasksTodo <- taskTodo
		c.taskGeneratedCount++
	default:
		c.logger.Fatalf("Unknown generation type: %d", c.settings.TaskGeneration)
	}

	// The todo channel stays open until every pixel is ingested: tasks handed
	// to a worker that is later lost get requeued on this channel, which can
	// happen long after generation finishes
	elapsedTime = time.Since(startTime)

	c.logger.Debugf("Done generating %d tasks in %s", c.taskGeneratedCount, elapsedTime)
}

func (c *Coordinator) ingestTasks() {
	c.logger.Info("Ingesting tasks")

	var elapsedTime time.Duration
	var startTime = time.Now()

	for {
		if c.taskIngestedCount == c.taskCount {
			// There are no more tasks to ingest
			break
		}

		// Get the next completed task
		taskReceived := <-c.tasksDone
		c.taskIngestedCount++

		c.mutex.Lock()
		delete(c.tasksHandedOut[taskReceived.WorkerAddress], taskReceived.ID)
		c.mutex.Unlock()

		// Record each returned pixel on the image
		for r := 0; r < len(taskReceived.Results); r++ {
			result := taskReceived.Results[r]
			c.image.Set(result.Column, result.Row, result.Gray)
			c.pixelsLeft--
		}

		// All pixels have been recorded so hand the buffer to the encoder
		if c.pixelsLeft == 0 {
			path := filepath.Join(c.settings.SavePath, c.settings.OutputFile)
			if err := encode.WriteImage(path, c.image); err != nil {
				c.logger.Error("Failed to write out file")
				c.logger.Debug(err.Error())
			} else {
				c.logger.Infof("Success! Saved image to %s", path)
			}
		}
	}

	// Every pixel is recorded, so no task can be requeued anymore. Closing
	// the todo channel now makes GetTask hand out the shutdown sentinel to
	// any worker still asking for work.
	elapsedTime = time.Since(startTime)
	close(c.tasksTodo)
	close(c.tasksDone)
	c.logger.Debugf("Done ingesting %d tasks in %s", c.taskIngestedCount, elapsedTime)

	c.logger.Infof("Waiting for %d workers to disconnect", len(c.clients))
	c.workerWait.Wait()
	misc.CheckError(c.Server.Stop(), c.logger, misc.Warning)
}

func (c *Coordinator) RegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Create a client to communicate with this worker
	client := multirpc.NewTcpClient(workerServerAddress, workerServerAddress)
	misc.CheckError(client.Connect(), c.logger, misc.Warning)

	// Track all tasks this worker checks out
	c.mutex.Lock()
	c.clients[workerServerAddress] = &client
	c.tasksHandedOut[workerServerAddress] = make(map[uint]task.Task)
	c.mutex.Unlock()

	c.logger.Infof("Worker joined: %s", workerServerAddress)
	c.workerWait.Add(1)

	return nil
}

func (c *Coordinator) DeRegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	// Put tasks this worker has not returned yet back into the todo pool
	go func(tasks map[uint]task.Task) {
		for _, v := range tasks {
			v.CurrentTask = 0
			v.Results = nil
			c.tasksTodo <- v
		}
	}(c.tasksHandedOut[workerServerAddress])

	// Disconnect from worker
	misc.CheckError(c.clients[workerServerAddress].Disconnect(), c.logger, misc.Warning)

	// Remove stored values associated with this worker
	c.mutex.Lock()
	delete(c.tasksHandedOut, workerServerAddress)
	delete(c.clients, workerServerAddress)
	c.mutex.Unlock()

	c.logger.Infof("Worker left: %s", workerServerAddress)
	c.workerWait.Done()

	return nil
}

func (c *Coordinator) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

func (c *Coordinator) GetTask(workerAddress string, reply *task.Task) error {
	todo, more := <-c.tasksTodo
	if !more {
		c.logger.Info("Telling worker that all tasks are handed out")
		return errors.New("all tasks handed out")
	}
	c.mutex.Lock()
	todo.WorkerAddress = workerAddress
	c.tasksHandedOut[workerAddress][todo.ID] = todo
	c.mutex.Unlock()
	*reply = todo
	return nil
}

func (c *Coordinator) ReturnTask(done task.Task, nothing *misc.Nothing) error {
	c.tasksDone <- done
	return nil
}

func (c *Coordinator) GetRenderSettings(nothing misc.Nothing, settings *mandelbrot.Settings) error {
	*settings = c.settings.Render
	return nil
}
