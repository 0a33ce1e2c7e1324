// Package remote exposes the chart's view controls over OSC so sequencers,
// control surfaces and scripts can drive the tuned frequency.
package remote

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hypebeast/go-osc/osc"

	"github.com/schollz/freqchart/internal/input"
)

// Prefix is the OSC address namespace.
const Prefix = "/freqchart"

// NewDispatcher builds a dispatcher that turns OSC messages into input
// messages handed to send. send is normally (*tea.Program).Send, which
// queues the message on the event loop.
func NewDispatcher(send func(tea.Msg)) (*osc.StandardDispatcher, error) {
	d := osc.NewStandardDispatcher()
	handlers := map[string]func(*osc.Message) (input.RemoteMsg, error){
		"/tune": func(msg *osc.Message) (input.RemoteMsg, error) {
			f, err := floatArg(msg, 0)
			return input.TuneMsg{Frequency: f}, err
		},
		"/step": func(msg *osc.Message) (input.RemoteMsg, error) {
			f, err := floatArg(msg, 0)
			return input.StepMsg{Delta: f}, err
		},
		"/band": func(msg *osc.Message) (input.RemoteMsg, error) {
			s, err := stringArg(msg, 0)
			return input.BandMsg{ID: s}, err
		},
		"/zoom": func(msg *osc.Message) (input.RemoteMsg, error) {
			return zoomArg(msg)
		},
		"/reset": func(msg *osc.Message) (input.RemoteMsg, error) {
			return input.ResetMsg{}, nil
		},
		"/pan": func(msg *osc.Message) (input.RemoteMsg, error) {
			f, err := floatArg(msg, 0)
			return input.PanMsg{Direction: f}, err
		},
		"/theme": func(msg *osc.Message) (input.RemoteMsg, error) {
			if len(msg.Arguments) == 0 {
				return input.ThemeMsg{}, nil
			}
			s, err := stringArg(msg, 0)
			return input.ThemeMsg{Name: strings.TrimSpace(s)}, err
		},
	}

	for suffix, parse := range handlers {
		parse := parse
		addr := Prefix + suffix
		err := d.AddMsgHandler(addr, func(msg *osc.Message) {
			rm, err := parse(msg)
			if err != nil {
				log.Printf("Ignoring OSC %s: %v", addr, err)
				return
			}
			log.Printf("OSC %s -> %s", addr, rm)
			send(rm)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", addr, err)
		}
	}
	return d, nil
}

func floatArg(msg *osc.Message, i int) (float64, error) {
	if i >= len(msg.Arguments) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	switch v := msg.Arguments[i].(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("argument %d: %w", i, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("argument %d has unsupported type %T", i, msg.Arguments[i])
}

func stringArg(msg *osc.Message, i int) (string, error) {
	if i >= len(msg.Arguments) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	s, ok := msg.Arguments[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d has unsupported type %T", i, msg.Arguments[i])
	}
	return s, nil
}

// zoomArg accepts "in"/"out" or a signed number.
func zoomArg(msg *osc.Message) (input.RemoteMsg, error) {
	if s, err := stringArg(msg, 0); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "in", "+":
			return input.ZoomMsg{In: true}, nil
		case "out", "-":
			return input.ZoomMsg{In: false}, nil
		}
	}
	f, err := floatArg(msg, 0)
	if err != nil {
		return nil, err
	}
	if f == 0 {
		return nil, fmt.Errorf("zoom direction is zero")
	}
	return input.ZoomMsg{In: f > 0}, nil
}
