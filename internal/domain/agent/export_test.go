package agent

import "time"

// SetDelay shortens the dispatch return delay for tests.
func SetDelay(s *Service, d time.Duration) {
	s.delay = d
}
