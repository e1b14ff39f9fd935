package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	zplane "github.com/tphakala/go-zplane"
	"github.com/tphakala/go-zplane/internal/wavio"
)

const filterArgs = 2

func filterCmd() *cobra.Command {
	var (
		coeffs   coeffFlags
		parallel bool
	)

	cmd := &cobra.Command{
		Use:   "filter input.wav output.wav",
		Short: "Apply H(z) to every channel of a WAV file",
		Args:  cobra.ExactArgs(filterArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, a, err := coeffs.polynomials(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			stats, err := filterWAV(args[0], args[1], b, a, parallel)
			if err != nil {
				return err
			}

			log.Info().
				Str("input", filepath.Base(args[0])).
				Str("output", filepath.Base(args[1])).
				Int("rate", stats.format.SampleRate).
				Int("channels", stats.format.Channels).
				Int("bits", stats.format.BitDepth).
				Int64("frames", stats.frames).
				Dur("elapsed", time.Since(start)).
				Msg("filtered")
			return nil
		},
	}

	addCoeffFlags(cmd, &coeffs)
	cmd.Flags().BoolVar(&parallel, "parallel", true, "filter channels concurrently")
	return cmd
}

type filterStats struct {
	format wavio.Format
	frames int64
}

// filterWAV streams input through one filter per channel into output, which
// is written with the input's format.
func filterWAV(inputPath, outputPath string, b, a zplane.Polynomial, parallel bool) (stats *filterStats, err error) {
	in, err := wavio.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	format := in.Format()
	log.Debug().
		Int("rate", format.SampleRate).
		Int("channels", format.Channels).
		Int("bits", format.BitDepth).
		Msg("input format")

	filters, err := channelFilters(format.Channels, b, a)
	if err != nil {
		return nil, err
	}

	out, err := wavio.Create(outputPath, format)
	if err != nil {
		return nil, err
	}
	// The header is finalized on Close, so its error matters.
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	stats = &filterStats{format: format}
	for {
		block, err := in.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		processChannels(filters, block, parallel)
		if err := out.Write(block); err != nil {
			return nil, err
		}
		stats.frames += int64(len(block[0]))
	}

	return stats, nil
}

func channelFilters(channels int, b, a zplane.Polynomial) ([]*zplane.Filter, error) {
	filters := make([]*zplane.Filter, channels)
	for ch := range channels {
		f, err := zplane.NewFilter(b, a)
		if err != nil {
			return nil, fmt.Errorf("failed to create filter for channel %d: %w", ch, err)
		}
		filters[ch] = f
	}
	return filters, nil
}

// processChannels filters each channel block in place.
func processChannels(filters []*zplane.Filter, block [][]float64, parallel bool) {
	if !parallel || len(filters) == 1 {
		for ch, f := range filters {
			block[ch] = f.Process(block[ch])
		}
		return
	}

	var wg sync.WaitGroup
	for ch, f := range filters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			block[ch] = f.Process(block[ch])
		}()
	}
	wg.Wait()
}
