// Package demo replays scripted progress bar sessions.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sigman78/zafran/internal/workload"
	"github.com/sigman78/zafran/pkg/zafran"
)

// Speed scales the pause between redraws.
type Speed string

const (
	SpeedInstant Speed = "instant" // no pauses
	SpeedFast    Speed = "fast"    // a fifth of normal
	SpeedNormal  Speed = "normal"
	SpeedSlow    Speed = "slow" // twice normal
)

// ParseSpeed validates a speed name.
func ParseSpeed(name string) (Speed, error) {
	switch s := Speed(name); s {
	case SpeedInstant, SpeedFast, SpeedNormal, SpeedSlow:
		return s, nil
	}
	return "", fmt.Errorf("invalid speed %q (want instant, fast, normal or slow)", name)
}

func (s Speed) scale(d time.Duration) time.Duration {
	switch s {
	case SpeedInstant:
		return 0
	case SpeedFast:
		return d / 5
	case SpeedSlow:
		return d * 2
	default:
		return d
	}
}

// Config configures a demo run.
type Config struct {
	Out   io.Writer
	Speed Speed
	Clock func() time.Time
}

// NewConfig returns a Config writing to out at the given speed.
func NewConfig(out io.Writer, speed Speed) Config {
	return Config{Out: out, Speed: speed}
}

// Run plays every session in order, sharing one bar between them.
func Run(ctx context.Context, cfg Config) error {
	bar, err := zafran.New(100, zafran.WithOutput(cfg.Out), zafran.WithClock(cfg.Clock))
	if err != nil {
		return fmt.Errorf("create bar: %w", err)
	}
	for _, session := range []func(context.Context, *zafran.Bar, Speed) error{
		basic,
		relabel,
		download,
	} {
		if err := session(ctx, bar, cfg.Speed); err != nil {
			return err
		}
	}
	return nil
}

// basic shows a plain bar with a prefix and custom glyphs.
func basic(ctx context.Context, bar *zafran.Bar, speed Speed) error {
	bar.SetPrefix("Working")
	bar.SetNCols(50)
	bar.SetFillChars('=', ' ')
	bar.SetFormat("default")

	lim := workload.NewLimiter(speed.scale(50 * time.Millisecond))
	for i := uint64(0); i < bar.Total(); i++ {
		bar.Update(i)
		if err := lim.Wait(ctx); err != nil {
			return err
		}
	}

	bar.Finish("✅ Completed ", "Ok, done!")
	return nil
}

// relabel changes the labels while the bar is running. It reuses the bar
// from basic without resetting it.
func relabel(ctx context.Context, bar *zafran.Bar, speed Speed) error {
	bar.SetPrefix("Preparing")
	bar.SetFillChars('$', '.')
	bar.SetNCols(50)
	bar.SetFormat("default")

	lim := workload.NewLimiter(speed.scale(60 * time.Millisecond))
	for i := uint64(0); i < bar.Total(); i++ {
		switch i {
		case 10:
			bar.UpdatePrefix("Uploading")
			bar.UpdateSuffix("(slow...)")
		case 20:
			bar.UpdatePrefix("Finalizing")
			bar.UpdateSuffix("(almost there)")
		}

		bar.Update(i)
		if err := lim.Wait(ctx); err != nil {
			return err
		}
	}

	bar.Finish("✅ Done      ", "Ok, done!")
	return nil
}

// download starts over with 1000 units in the download style.
func download(ctx context.Context, bar *zafran.Bar, speed Speed) error {
	if err := bar.Init(1000); err != nil {
		return err
	}
	bar.SetPrefix("Downloading")
	bar.SetFillChars('#', '.')
	bar.SetNCols(50)
	bar.SetFormat("download")
	bar.UpdateSuffix("📦")

	lim := workload.NewLimiter(speed.scale(30 * time.Millisecond))
	for i := uint64(0); i < bar.Total(); i++ {
		bar.Update(i)
		if err := lim.Wait(ctx); err != nil {
			return err
		}
	}

	bar.Finish("✅ Downloaded", "✔️")
	return nil
}
