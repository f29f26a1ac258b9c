package task

import "testing"

func TestAddTasksForRow(t *testing.T) {
	taskTodo := NewTask(0)
	taskTodo.AddTasksForRow(5, 8)

	if len(taskTodo.Tasks) != 8 {
		t.Fatalf("generated %d coordinates, expected 8", len(taskTodo.Tasks))
	}
	for i, coordinate := range taskTodo.Tasks {
		if coordinate.Row != 5 || coordinate.Column != i {
			t.Errorf("coordinate %d = %s, expected column %d row 5", i, coordinate.String(), i)
		}
	}
}

func TestAddTasksForColumn(t *testing.T) {
	taskTodo := NewTask(0)
	taskTodo.AddTasksForColumn(2, 4)

	if len(taskTodo.Tasks) != 4 {
		t.Fatalf("generated %d coordinates, expected 4", len(taskTodo.Tasks))
	}
	for i, coordinate := range taskTodo.Tasks {
		if coordinate.Column != 2 || coordinate.Row != i {
			t.Errorf("coordinate %d = %s, expected column 2 row %d", i, coordinate.String(), i)
		}
	}
}

func TestAddTasksForImage(t *testing.T) {
	taskTodo := NewTask(0)
	taskTodo.AddTasksForImage(3, 3)

	if len(taskTodo.Tasks) != 9 {
		t.Fatalf("generated %d coordinates, expected 9", len(taskTodo.Tasks))
	}
	// Coordinates walk the grid row by row
	if taskTodo.Tasks[0] != (Coordinate{Column: 0, Row: 0}) {
		t.Errorf("first coordinate = %s", taskTodo.Tasks[0].String())
	}
	if taskTodo.Tasks[4] != (Coordinate{Column: 1, Row: 1}) {
		t.Errorf("middle coordinate = %s", taskTodo.Tasks[4].String())
	}
}

func TestGetNextTaskSequencing(t *testing.T) {
	taskTodo := NewTask(7)
	taskTodo.AddTasksForRow(0, 3)

	for i := 0; i < 3; i++ {
		coordinate, err := taskTodo.GetNextTask()
		if err != nil {
			t.Fatalf("coordinate %d: unexpected error %s", i, err)
		}
		if coordinate.Column != i {
			t.Errorf("coordinate %d has column %d", i, coordinate.Column)
		}
	}

	if _, err := taskTodo.GetNextTask(); err == nil {
		t.Error("expected an error once all coordinates are handed out")
	}
}

func TestAddResult(t *testing.T) {
	taskTodo := NewTask(0)
	taskTodo.AddResult(Pixel{Column: 1, Gray: 254, Row: 2})

	if len(taskTodo.Results) != 1 {
		t.Fatalf("recorded %d results, expected 1", len(taskTodo.Results))
	}
	if taskTodo.Results[0].Gray != 254 {
		t.Errorf("result gray = %d, expected 254", taskTodo.Results[0].Gray)
	}
}

func TestGenerationString(t *testing.T) {
	if Row.String() != "Row" || Column.String() != "Column" || Image.String() != "Image" {
		t.Error("generation names do not match their constants")
	}
}
