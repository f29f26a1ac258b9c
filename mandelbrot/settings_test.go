package mandelbrot

import "testing"

func TestVerifyRejectsBadParameters(t *testing.T) {
	bad := []Settings{
		{Size: 0, MaxIterations: 255, PixelsWide: 64},
		{Size: -2.0, MaxIterations: 255, PixelsWide: 64},
		{Size: 2.0, MaxIterations: 0, PixelsWide: 64},
		{Size: 2.0, MaxIterations: -1, PixelsWide: 64},
		{Size: 2.0, MaxIterations: 256, PixelsWide: 64},
		{Size: 2.0, MaxIterations: 255, PixelsWide: 0},
		{Size: 2.0, MaxIterations: 255, PixelsWide: -64},
	}
	for _, settings := range bad {
		if err := settings.Verify(); err == nil {
			t.Errorf("expected an error for %s", settings.String())
		}
	}
}

func TestVerifyDefaultsWorkers(t *testing.T) {
	settings := Settings{Size: 2.0, MaxIterations: 255, PixelsWide: 64}
	if err := settings.Verify(); err != nil {
		t.Fatalf("settings did not verify: %s", err)
	}
	if settings.Workers != 1 {
		t.Errorf("workers defaulted to %d, expected 1", settings.Workers)
	}
}

func TestVerifyKeepsValidParameters(t *testing.T) {
	settings := Settings{CenterX: -0.5, CenterY: 0.0, Size: 2.0, MaxIterations: 255, PixelsWide: 1024, Workers: 4}
	if err := settings.Verify(); err != nil {
		t.Fatalf("settings did not verify: %s", err)
	}
	if settings.Workers != 4 || settings.PixelsWide != 1024 {
		t.Errorf("verify altered valid settings: %s", settings.String())
	}
}
