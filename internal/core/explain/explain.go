package explain

// Explain receives diagnostics about a single search run.
type Explain interface {
	KV(key string, value any)
	Timer(name string) func()
}

// Discard drops everything it is given.
type Discard struct{}

func (Discard) KV(string, any) {}

func (Discard) Timer(string) func() { return func() {} }
