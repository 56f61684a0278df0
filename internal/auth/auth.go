package auth

// Service is an optional static allowlist. An empty allowlist means the
// bot is open to everyone.
type Service struct {
	allowedUsers map[int64]struct{}
}

func New(allowed []int64) *Service {
	s := &Service{allowedUsers: make(map[int64]struct{}, len(allowed))}
	for _, id := range allowed {
		s.allowedUsers[id] = struct{}{}
	}
	return s
}

func (s *Service) IsAllowed(userID int64) bool {
	if len(s.allowedUsers) == 0 {
		return true
	}
	_, ok := s.allowedUsers[userID]
	return ok
}
