package logger

import "time"

// Timer measures one named phase and reports its duration on End.
type Timer struct {
	StartTime time.Time
	Name      string
	Console   *Console
}

func (t *Timer) End() time.Duration {
	duration := time.Since(t.StartTime)
	t.Console.Info("%s completed in %v", t.Name, duration.Round(time.Millisecond))
	return duration
}
