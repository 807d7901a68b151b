// Package sweep exhaustively checks a 24-bit block code: every message is
// encoded, every error pattern up to a given weight is applied, and the
// decoder outcome is tallied and timed.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/Venemo/golay-fast/bit"
)

const (
	// Messages handed to a single worker at a time.
	chunkSize = 64

	// CorrectableErrors is the number of bit errors every codeword must
	// recover from.
	CorrectableErrors = 3
)

// Codec is a 12-bit message to 24-bit codeword block code.
type Codec interface {
	Encode(message uint16) uint32
	Decode(codeword uint32) uint16
}

// CorrectionError is returned when a codeword with a correctable number of
// errors did not decode to its message.
type CorrectionError struct {
	Weight   int
	Message  uint16
	Codeword uint32
	Pattern  uint32
	Decoded  uint16
}

func (e *CorrectionError) Error() string {
	return fmt.Sprintf("sweep: can't decode %d-bit error: encoded %#03x -> %#06x, error=%s, decoded: %#x",
		e.Weight, e.Message, e.Codeword, bit.Format(e.Pattern, CodewordBits, " "), e.Decoded)
}

// WeightReport holds the outcomes for all patterns of one error weight.
type WeightReport struct {
	Weight   int
	Patterns int // error patterns per message
	Total    int
	Fixed    int
	Detected int
	Failed   int
	Elapsed  time.Duration
}

// FixedRatio is the share of decodes that returned the original message.
func (w WeightReport) FixedRatio() float64 {
	if w.Total == 0 {
		return 0
	}
	return float64(w.Fixed) / float64(w.Total)
}

// Report is the outcome of a sweep: the encode time and one WeightReport
// per completed error weight.
type Report struct {
	Messages int
	Encode   time.Duration
	Weights  []WeightReport
}

// Runner sweeps Codec. ErrorResult is the value Codec.Decode returns for
// codewords it detected as uncorrectable.
type Runner struct {
	Codec       Codec
	ErrorResult uint16
	Config      Config
	Logger      logrus.FieldLogger
	Metrics     *Metrics
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l
	}
	return r.Logger
}

// Run the sweep. Errors up to CorrectableErrors must all be corrected; the
// first pattern that is not aborts the sweep with a *CorrectionError and the
// report of the weights completed so far. Higher weights are only tallied.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.Codec == nil {
		return nil, errors.New("sweep: no codec")
	}
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	var (
		log    = r.logger()
		report = &Report{Messages: r.Config.Messages}
	)

	log.WithField("messages", r.Config.Messages).Info("encode: start")
	start := time.Now()
	encoded := make([]uint32, r.Config.Messages)
	for m := range encoded {
		encoded[m] = r.Codec.Encode(uint16(m))
	}
	report.Encode = time.Since(start)
	log.WithField("elapsed", report.Encode).Info("encode: done")
	if r.Metrics != nil {
		r.Metrics.observePhase("encode", report.Encode)
	}

	for weight := 0; weight <= r.Config.MaxErrors; weight++ {
		w, err := r.runWeight(ctx, weight, encoded)
		if r.Metrics != nil {
			// Aborted weights are counted too, so the failure shows up.
			r.Metrics.observeWeight(w)
		}
		if err != nil {
			return report, err
		}
		report.Weights = append(report.Weights, w)

		entry := log.WithFields(logrus.Fields{
			"weight":   w.Weight,
			"total":    w.Total,
			"fixed":    w.Fixed,
			"detected": w.Detected,
			"failed":   w.Failed,
			"elapsed":  w.Elapsed,
		})
		if w.Failed > 0 {
			entry.Warn("decode: done, some codewords decoded to the wrong message")
		} else {
			entry.Info("decode: done")
		}
	}

	return report, nil
}

func (r *Runner) runWeight(ctx context.Context, weight int, encoded []uint32) (WeightReport, error) {
	w := WeightReport{
		Weight:   weight,
		Patterns: bit.Binomial(CodewordBits, weight),
	}
	r.logger().WithFields(logrus.Fields{
		"weight":   weight,
		"patterns": w.Patterns,
	}).Debug("decode: start")

	var (
		fixed, detected, failed atomic.Int64
		mustCorrect             = weight <= CorrectableErrors
		start                   = time.Now()
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Config.Workers)
	for first := 0; first < len(encoded); first += chunkSize {
		first, last := first, first+chunkSize
		if last > len(encoded) {
			last = len(encoded)
		}
		g.Go(func() error {
			errs, err := bit.NewCombination(weight, CodewordBits)
			if err != nil {
				return err
			}

			var nFixed, nDetected, nFailed int64
			defer func() {
				fixed.Add(nFixed)
				detected.Add(nDetected)
				failed.Add(nFailed)
			}()

			for m := first; m < last; m++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				var (
					message  = uint16(m)
					codeword = encoded[m]
				)
				errs.Reset()
				for errs.Next() {
					switch decoded := r.Codec.Decode(codeword ^ errs.Mask()); {
					case decoded == message:
						nFixed++
					case mustCorrect:
						nFailed++
						return &CorrectionError{
							Weight:   weight,
							Message:  message,
							Codeword: codeword,
							Pattern:  errs.Mask(),
							Decoded:  decoded,
						}
					case decoded == r.ErrorResult:
						nDetected++
					default:
						nFailed++
					}
				}
			}
			return nil
		})
	}

	err := g.Wait()
	w.Elapsed = time.Since(start)
	w.Fixed = int(fixed.Load())
	w.Detected = int(detected.Load())
	w.Failed = int(failed.Load())
	w.Total = w.Fixed + w.Detected + w.Failed
	return w, err
}
