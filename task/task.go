package task

import (
	"errors"
	"fmt"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation selects how the coordinator slices the image into tasks: one
// task per row, one per column, or the whole image as a single task.
type Generation int

func (g Generation) String() string {
	return []string{
		"Row", "Column", "Image",
	}[g]
}

type Task struct {
	CurrentTask   int
	ID            uint
	Results       []Pixel
	Tasks         []Coordinate
	WorkerAddress string
}

func NewTask(id uint) Task {
	return Task{
		ID: id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(imageRow int, imageWidth int) {
	for c := 0; c < imageWidth; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddTasksForColumn(imageColumn int, imageHeight int) {
	for r := 0; r < imageHeight; r++ {
		t.AddTaskForPixel(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddTasksForImage(imageHeight int, imageWidth int) {
	for r := 0; r < imageHeight; r++ {
		for c := 0; c < imageWidth; c++ {
			t.AddTaskForPixel(Coordinate{Column: c, Row: r})
		}
	}
}

// GetNextTask hands out the coordinates one at a time. It returns an error
// once every coordinate in this task has been handed out.
func (t *Task) GetNextTask() (Coordinate, error) {
	if t.CurrentTask >= len(t.Tasks) {
		return Coordinate{}, errors.New("no more coordinates in this task")
	}
	coordinate := t.Tasks[t.CurrentTask]
	t.CurrentTask++
	return coordinate, nil
}

func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
}
