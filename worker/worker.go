// Package worker runs the computing half of the distributed render: it pulls
// coordinate tasks from the coordinator, evaluates the escape-time recurrence
// for each one and returns the resulting gray pixels.
package worker

import (
	"fmt"
	"time"

	"github.com/AhiyaHiya/MandelbrotSet/mandelbrot"
	"github.com/AhiyaHiya/MandelbrotSet/misc"
	"github.com/AhiyaHiya/MandelbrotSet/task"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

type Worker struct {
	coordinatorAddress string
	logger             bslogger.Logger
	myAddress          string
	renderer           mandelbrot.Mandelbrot
	tasksCompleted     int

	ServerClient multirpc.TcpServerClient
}

func NewWorker(settingsFile string) *Worker {
	settings := NewSettings(settingsFile)
	worker := &Worker{
		coordinatorAddress: settings.CoordinatorAddress,
		logger:             bslogger.NewLogger("Worker", bslogger.Normal, nil),
	}

	// Find a free port to use for this worker
	port, err := misc.GetFreePort()
	misc.CheckError(err, worker.logger, misc.Fatal)
	worker.logger.Debugf("Found free port: %d", port)
	worker.myAddress = fmt.Sprintf("%s:%d", misc.GetLocalAddress(), port)
	worker.logger = bslogger.NewLogger(fmt.Sprintf("Worker %s", worker.myAddress), bslogger.Normal, nil)
	worker.ServerClient = multirpc.NewTcpServerClient(worker, worker.myAddress, worker.myAddress, settings.CoordinatorAddress, settings.CoordinatorAddress)
	misc.CheckError(worker.ServerClient.Server.Run(), worker.logger, misc.Fatal)

	// Register with the coordinator
	misc.CheckError(worker.ServerClient.Client.Connect(), worker.logger, misc.Fatal)
	var nothing misc.Nothing
	misc.CheckError(worker.ServerClient.Client.Call("Coordinator.RegisterWorker", worker.myAddress, &nothing), worker.logger, misc.Fatal)

	// Get render settings from the coordinator
	var renderSettings mandelbrot.Settings
	misc.CheckError(worker.ServerClient.Client.Call("Coordinator.GetRenderSettings", nothing, &renderSettings), worker.logger, misc.Fatal)
	worker.renderer = mandelbrot.NewMandelbrot(renderSettings)

	go worker.tickers()
	go worker.processTasks()

	return worker
}

// Wait blocks until this worker has drained the coordinator and shut down.
func (w *Worker) Wait() {
	w.ServerClient.Server.Wait()
}

func (w *Worker) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			w.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			var reply bool
			err := w.ServerClient.Client.Call("Coordinator.RollCall", junk, &reply)
			if err != nil {
				// Cannot communicate with the coordinator so we should shut down
				w.logger.Warningf("Coordinator missed roll call: %s", err)
				w.ServerClient.Client.Disconnect()
				w.ServerClient.Server.Stop()
				continue
			}

		case <-heartBeat.C:
			w.logger.Debug("Heart beat ticker")
			w.logger.Infof("Tasks [Completed: %d]", w.tasksCompleted)
		}
	}
}

func (w *Worker) processTasks() {
	w.logger.Info("Processing tasks")

	var nothing misc.Nothing
	var elapsedTime time.Duration
	var startTime = time.Now()

	for {
		var taskTodo task.Task

		err := w.ServerClient.Client.Call("Coordinator.GetTask", w.myAddress, &taskTodo)
		if err != nil {
			// This is an expected error. No more work to do
			if err.Error() == "all tasks handed out" {
				break
			}
			w.logger.Fatalf("Unable to get a task: %s", err.Error())
		}

		for {
			// Evaluate each coordinate given
			coordinate, err := taskTodo.GetNextTask()
			if err != nil {
				break
			}

			point := w.renderer.PointAt(coordinate.Column, coordinate.Row)
			taskTodo.AddResult(task.Pixel{
				Column: coordinate.Column,
				Gray:   w.renderer.Gray(point),
				Row:    coordinate.Row,
			})
		}

		err = w.ServerClient.Client.Call("Coordinator.ReturnTask", taskTodo, &nothing)
		if err != nil {
			w.logger.Errorf("Unable to return a task: %s", err.Error())
			break
		}
		w.tasksCompleted++
	}

	elapsedTime = time.Since(startTime)

	w.logger.Info("Done processing tasks")
	w.logger.Debugf("Processed %d tasks in %s", w.tasksCompleted, elapsedTime)

	w.logger.Info("Shutting down")
	var nothingReply misc.Nothing
	w.ServerClient.Client.Call("Coordinator.DeRegisterWorker", w.myAddress, &nothingReply)
	misc.CheckError(w.ServerClient.Client.Disconnect(), w.logger, misc.Warning)
	misc.CheckError(w.ServerClient.Server.Stop(), w.logger, misc.Warning)
}

func (w *Worker) RollCall(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}
