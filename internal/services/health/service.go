package health

// Service encapsulates health-related checks.
type Service struct {
	remoteEnabled bool
}

// NewService constructs a new health service.
func NewService(remoteEnabled bool) *Service {
	return &Service{remoteEnabled: remoteEnabled}
}

// Status returns a simple health payload including which recommendation mode
// the process is running in.
func (s *Service) Status() map[string]any {
	mode := "heuristic"
	if s.remoteEnabled {
		mode = "remote"
	}
	return map[string]any{
		"status": "healthy",
		"mode":   mode,
	}
}
