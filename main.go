package main

import (
	"flag"
	"path/filepath"

	"github.com/AhiyaHiya/MandelbrotSet/coordinator"
	"github.com/AhiyaHiya/MandelbrotSet/encode"
	"github.com/AhiyaHiya/MandelbrotSet/mandelbrot"
	"github.com/AhiyaHiya/MandelbrotSet/misc"
	"github.com/AhiyaHiya/MandelbrotSet/worker"
	"github.com/BrugadaSyndrome/bslogger"
)

var (
	centerX, centerY, size    float64
	maxIterations, pixelsWide int
	workerCount               int
	outputFile, settingsFile  string
	isCoordinator, isWorker   bool
)

func main() {
	parseArguments()

	if isCoordinator {
		coordinator.NewCoordinator(settingsFile).Wait()
		return
	}

	if isWorker {
		worker.NewWorker(settingsFile).Wait()
		return
	}

	renderLocal()
}

func parseArguments() {
	// Local render values
	flag.Float64Var(&centerX, "centerX", -0.5, "Center x value of the view window")
	flag.Float64Var(&centerY, "centerY", 0.0, "Center y value of the view window")
	flag.Float64Var(&size, "size", 2.0, "Side length of the square view window")
	flag.IntVar(&maxIterations, "maxIterations", 255, "Iterations to run before treating a point as bounded")
	flag.IntVar(&pixelsWide, "pixelsWide", 1024, "Side length of the square image in pixels")
	flag.IntVar(&workerCount, "workers", 1, "Number of goroutines rendering rows")
	flag.StringVar(&outputFile, "outputFile", "mandelbrot.jpg", "File to write the image to (.png, .jpg)")

	// Distributed render values
	flag.BoolVar(&isCoordinator, "isCoordinator", false, "Run this instance as the coordinator")
	flag.BoolVar(&isWorker, "isWorker", false, "Run this instance as a worker")
	flag.StringVar(&settingsFile, "settingsFile", "settings.json", "Json settings file for the coordinator or worker")

	flag.Parse()
}

func renderLocal() {
	logger := bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil)

	settings := mandelbrot.Settings{
		CenterX:       centerX,
		CenterY:       centerY,
		MaxIterations: maxIterations,
		PixelsWide:    pixelsWide,
		Size:          size,
		Workers:       workerCount,
	}
	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	renderer := mandelbrot.NewMandelbrot(settings)
	image := renderer.Render()

	path, err := filepath.Abs(outputFile)
	misc.CheckError(err, logger, misc.Fatal)

	if err := encode.WriteImage(path, image); err != nil {
		logger.Error("Failed to write out file")
		logger.Debug(err.Error())
		return
	}
	logger.Infof("Success! Saved image to %s", path)
}
