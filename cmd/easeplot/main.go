// Command easeplot draws an easing curve in the terminal and animates a
// marker along it with a tween driver.
//
// Usage:
//
//	easeplot -ease ElasticOut -duration 2
//	easeplot -presets presets.yaml -preset wobble
//
// Keys: space restarts, n/p cycle curves, q or Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sgostarter/i/l"

	"github.com/phanxgames/tween"
)

const frameInterval = time.Second / 60

// curveChoice is one entry the viewer can cycle through.
type curveChoice struct {
	label  string
	easing tween.Easing
}

type viewer struct {
	screen tcell.Screen
	cache  *tween.CurveCache

	choices  []curveChoice
	current  int
	duration float64

	fn     tween.Func
	marker float64
	driver *tween.Driver[float64, *float64]
}

func main() {
	var (
		easeName    = flag.String("ease", "BounceOut", "easing kind name or number")
		presetsPath = flag.String("presets", "", "YAML file of named easing presets")
		presetName  = flag.String("preset", "", "preset to show first (with -presets)")
		duration    = flag.Float64("duration", 1.5, "animation duration in seconds")
		list        = flag.Bool("list", false, "print the easing kinds and exit")
	)
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	if *list {
		for _, k := range tween.Kinds() {
			fmt.Printf("%2d  %s\n", int(k), k)
		}
		return
	}

	choices, start, err := loadChoices(*easeName, *presetsPath, *presetName)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("load easing")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("create screen")
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("init screen")
		os.Exit(1)
	}

	v := &viewer{
		screen:   screen,
		cache:    tween.NewCurveCache(0),
		choices:  choices,
		current:  start,
		duration: *duration,
	}
	err = v.run()
	screen.Fini()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("easeplot")
		os.Exit(1)
	}
}

// loadChoices builds the list of curves to cycle through: every preset when a
// presets file is given, otherwise every named kind.
func loadChoices(easeName, presetsPath, presetName string) ([]curveChoice, int, error) {
	if presetsPath == "" {
		e, err := tween.ParseEasing(easeName)
		if err != nil {
			return nil, 0, err
		}
		var choices []curveChoice
		start := 0
		for _, k := range tween.Kinds() {
			if k == e.Kind {
				start = len(choices)
			}
			choices = append(choices, curveChoice{label: k.String(), easing: tween.EasingOf(k)})
		}
		return choices, start, nil
	}

	f, err := os.Open(presetsPath)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	presets, err := tween.LoadPresets(f)
	if err != nil {
		return nil, 0, err
	}
	if len(presets) == 0 {
		return nil, 0, errors.New("easeplot: presets file is empty")
	}

	var choices []curveChoice
	start := -1
	for _, name := range presets.Names() {
		if name == presetName {
			start = len(choices)
		}
		choices = append(choices, curveChoice{label: name + " (" + presets[name].String() + ")", easing: presets[name]})
	}
	if start < 0 {
		if presetName != "" {
			return nil, 0, fmt.Errorf("easeplot: no preset named %q", presetName)
		}
		start = 0
	}
	return choices, start, nil
}

func (v *viewer) run() error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	if err := v.restart(); err != nil {
		return err
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := v.handle(ev)
			if err != nil || quit {
				return err
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			v.driver.Update(dt)
			v.draw()
		}
	}
}

func (v *viewer) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			return true, nil
		case ev.Rune() == ' ':
			return false, v.restart()
		case ev.Rune() == 'n':
			v.current = (v.current + 1) % len(v.choices)
			return false, v.restart()
		case ev.Rune() == 'p':
			v.current = (v.current + len(v.choices) - 1) % len(v.choices)
			return false, v.restart()
		}
	}
	return false, nil
}

// restart resolves the current curve and starts a fresh driver for the marker.
func (v *viewer) restart() error {
	choice := v.choices[v.current]
	fn, err := v.cache.Resolve(choice.easing)
	if err != nil {
		return fmt.Errorf("easeplot: %s: %w", choice.label, err)
	}
	if v.driver != nil {
		v.driver.Cancel()
	}
	v.fn = fn
	v.driver = tween.Pointer[float64]().Full(&v.marker, 0, 1, v.duration, tween.Scalar(tween.Linear.Func()))
	v.draw()
	return nil
}

func (v *viewer) draw() {
	s := v.screen
	s.Clear()

	w, h := s.Size()
	const left, top = 2, 2
	p := plot{w: w - 2*left, h: h - top - 3}

	title := tcell.StyleDefault.Bold(true)
	drawText(s, left, 0, title, fmt.Sprintf("%s  [%d/%d]", v.choices[v.current].label, v.current+1, len(v.choices)))
	drawText(s, left, h-1, tcell.StyleDefault.Dim(true), "space restart · n/p next/prev · q quit")

	if p.w < 2 || p.h < 2 {
		s.Show()
		return
	}

	guide := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	zero, one := p.guides()
	for x := 0; x < p.w; x++ {
		s.SetContent(left+x, top+zero, '·', nil, guide)
		s.SetContent(left+x, top+one, '·', nil, guide)
	}

	curve := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for _, pt := range p.curve(v.fn) {
		s.SetContent(left+pt.X, top+pt.Y, '•', nil, curve)
	}

	// The marker's progress runs linearly; the curve shapes where it sits.
	progress := v.marker
	marker := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	s.SetContent(left+p.col(progress), top+p.row(v.fn(progress)), '█', nil, marker)

	track := h - 2
	for x := 0; x < p.w; x++ {
		s.SetContent(left+x, track, '─', nil, guide)
	}
	s.SetContent(left+p.col(v.fn(progress)), track, '█', nil, marker)

	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
