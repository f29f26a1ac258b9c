package coordinator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AhiyaHiya/MandelbrotSet/mandelbrot"
	"github.com/AhiyaHiya/MandelbrotSet/misc"
	"github.com/AhiyaHiya/MandelbrotSet/task"
	"github.com/BrugadaSyndrome/bslogger"
)

type settings struct {
	logger bslogger.Logger

	OutputFile     string
	Render         mandelbrot.Settings
	SavePath       string
	ServerAddress  string
	TaskGeneration task.Generation
}

func NewSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	err, fileBytes := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("My Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Output File: %s\n", s.OutputFile)
	output += fmt.Sprintf("Render: %s\n", s.Render.String())
	output += fmt.Sprintf("Save Path: %s\n", s.SavePath)
	output += fmt.Sprintf("Task Generation: %s", s.TaskGeneration.String())
	return output
}

func (s *settings) Verify() error {
	if err := s.Render.Verify(); err != nil {
		return err
	}
	if s.OutputFile == "" {
		s.OutputFile = "mandelbrot.jpg"
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		s.TaskGeneration = task.Row
	}
	return nil
}

// Backup copies the verified settings into the save path so the run can be
// duplicated in the future.
func (s *settings) Backup() error {
	fileBytes, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("unable to marshal settings - %s", err)
	}
	bytesWritten, err := misc.WriteFile(filepath.Join(s.SavePath, "run_settings.json"), fileBytes)
	if err != nil {
		return err
	}
	if bytesWritten == 0 {
		return fmt.Errorf("wrote an empty settings backup to %s", s.SavePath)
	}
	return nil
}
