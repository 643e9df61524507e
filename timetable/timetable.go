// Package timetable reads flight schedules from YAML and turns them into
// route graphs.
//
// A timetable file looks like:
//
//	name: demo
//	flights:
//	  - {from: City_A, to: City_B, distance: 500, seats: 50, duration: 1h}
//	  - {from: City_B, to: City_C, distance: 300, seats: 30, duration: 90m}
//
// Records are validated with struct tags before any flight is added to a
// graph, so a bad file never yields a half-built graph.
package timetable

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/farepath/network"
)

// MaxFileSize is the largest timetable accepted from disk or a reader (1MB).
const MaxFileSize = 1024 * 1024

// Sentinel errors.
var (
	// ErrTooLarge indicates input larger than MaxFileSize.
	ErrTooLarge = errors.New("timetable: input exceeds maximum size")

	// ErrDecode indicates malformed YAML or mistyped fields.
	ErrDecode = errors.New("timetable: cannot decode")

	// ErrInvalid indicates a record failing validation.
	ErrInvalid = errors.New("timetable: invalid record")
)

//go:embed demo.yaml
var demoYAML []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Flight is one record of a timetable.
type Flight struct {
	From     string        `yaml:"from" validate:"required"`
	To       string        `yaml:"to" validate:"required"`
	Distance float64       `yaml:"distance" validate:"gte=0"`
	Seats    int           `yaml:"seats" validate:"gte=0"`
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
}

// Timetable is a named list of flights.
type Timetable struct {
	Name    string   `yaml:"name"`
	Flights []Flight `yaml:"flights" validate:"required,min=1,dive"`
}

// Decode reads and validates a timetable from r.
func Decode(r io.Reader) (*Timetable, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("timetable: read: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}

	var t Timetable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Load reads a timetable file from path.
func Load(path string) (*Timetable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timetable: open: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Demo returns the built-in three-city schedule.
func Demo() *Timetable {
	t, err := Decode(bytes.NewReader(demoYAML))
	if err != nil {
		panic("timetable: embedded demo is invalid: " + err.Error())
	}

	return t
}

// Validate checks every record against its struct tags.
func (t *Timetable) Validate() error {
	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Build adds every flight to a new route graph, in file order.
func (t *Timetable) Build() (*network.Graph, error) {
	g := network.NewGraph()
	for i, f := range t.Flights {
		if _, err := g.AddFlight(f.From, f.To, f.Distance, f.Seats, f.Duration); err != nil {
			return nil, fmt.Errorf("timetable: flight #%d: %w", i+1, err)
		}
	}

	return g, nil
}
