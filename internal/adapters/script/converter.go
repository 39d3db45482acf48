// Package script converts semicolon-delimited schedule scripts into event
// records. Scripts carry one directive per line:
//
//	0:02:02;sysmon;lights-2
//	0:03:45;communications;radioprompt;own
//
// Lines starting with '#' and blank lines are skipped, as are directives
// this converter has no event mapping for.
package script

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

var scaleNumbers = []string{"ONE", "TWO", "THREE", "FOUR"}

// Converter maps script directives to events. Communication directives name
// only a ship, so the stem catalogue supplies radio and frequency.
type Converter struct {
	stems ports.StemSource
}

func NewConverter(stems ports.StemSource) *Converter {
	return &Converter{stems: stems}
}

// Convert reads the script at path. Scale directions and stem choices are
// drawn from rng so a fixed seed reproduces the same document.
func (c *Converter) Convert(path string, rng *rand.Rand) ([]domain.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule script: %w", err)
	}
	defer file.Close()

	var events []domain.Event
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, ok, err := c.convertLine(line, rng)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", lineNo, err)
		}
		if ok {
			events = append(events, event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read schedule script: %w", err)
	}
	return events, nil
}

func (c *Converter) convertLine(line string, rng *rand.Rand) (domain.Event, bool, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 3 {
		return domain.Event{}, false, fmt.Errorf("want at least 3 fields, got %d", len(fields))
	}

	seconds, err := domain.ParseClock(fields[0])
	if err != nil {
		return domain.Event{}, false, err
	}
	task := strings.TrimSpace(fields[1])
	action := strings.TrimSpace(fields[2])

	switch {
	case task == "sysmon" && strings.Contains(action, "scales-"):
		event, err := scaleEvent(seconds, action, rng)
		return event, err == nil, err
	case task == "sysmon" && strings.Contains(action, "lights-"):
		event, err := lightEvent(seconds, action)
		return event, err == nil, err
	case task == "communications" && action == "radioprompt":
		if len(fields) < 4 {
			return domain.Event{}, false, fmt.Errorf("radioprompt needs a ship field")
		}
		event, err := c.commEvent(seconds, strings.TrimSpace(fields[3]), rng)
		return event, err == nil, err
	default:
		return domain.Event{}, false, nil
	}
}

func scaleEvent(seconds int, action string, rng *rand.Rand) (domain.Event, error) {
	number, err := actionNumber(action)
	if err != nil {
		return domain.Event{}, err
	}
	if number < 1 || number > len(scaleNumbers) {
		return domain.Event{}, fmt.Errorf("scale number %d out of range", number)
	}
	direction := "UP"
	if rng.Intn(2) == 1 {
		direction = "DOWN"
	}
	return domain.Event{
		Seconds: seconds,
		Sysmon: &domain.SysmonAction{
			ScaleNumber:    scaleNumbers[number-1],
			ScaleDirection: direction,
		},
	}, nil
}

func lightEvent(seconds int, action string) (domain.Event, error) {
	number, err := actionNumber(action)
	if err != nil {
		return domain.Event{}, err
	}
	// Light one is the green "on" light, the rest map to the red warning.
	color := "RED"
	if strings.Contains(strconv.Itoa(number), "1") {
		color = "GREEN"
	}
	return domain.Event{
		Seconds: seconds,
		Sysmon: &domain.SysmonAction{
			Activity:  "START",
			LightType: color,
		},
	}, nil
}

func (c *Converter) commEvent(seconds int, ship string, rng *rand.Rand) (domain.Event, error) {
	channel := domain.Channel(strings.ToLower(ship))
	pool, err := c.stems.Stems(channel)
	if err != nil {
		return domain.Event{}, err
	}
	if len(pool) == 0 {
		return domain.Event{}, fmt.Errorf("%w: channel %q", domain.ErrStemPoolExhausted, channel)
	}

	stem, err := domain.ParseStem(pool[rng.Intn(len(pool))])
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{
		Seconds: seconds,
		Comm: &domain.CommAction{
			Ship:  strings.ToUpper(ship),
			Radio: strings.ToUpper(stem.Radio),
			Freq:  stem.Freq,
		},
	}, nil
}

func actionNumber(action string) (int, error) {
	parts := strings.SplitN(action, "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed directive action %q", action)
	}
	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed directive action %q: %w", action, err)
	}
	return number, nil
}
