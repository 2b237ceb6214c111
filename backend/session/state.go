package session

import "sync"

type Phase string

const (
	Anonymous       Phase = "anonymous"
	Authenticating  Phase = "authenticating"
	SignedInAdmin   Phase = "admin"
	SignedInTeacher Phase = "teacher"
)

// State is the process-wide session state machine:
// Anonymous -> Authenticating -> {Admin, Teacher}, back to Anonymous on
// failure or logout. Logout clears everything unconditionally and has no
// remote effect.
type State struct {
	mu      sync.RWMutex
	phase   Phase
	current Account
}

func NewState() *State {
	return &State{phase: Anonymous}
}

func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *State) Current() (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.phase != SignedInAdmin && s.phase != SignedInTeacher {
		return Account{}, false
	}
	return s.current, true
}

func (s *State) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Authenticating
}

func (s *State) Succeed(account Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = account
	if account.Role == RoleAdmin {
		s.phase = SignedInAdmin
	} else {
		s.phase = SignedInTeacher
	}
}

func (s *State) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Anonymous
	s.current = Account{}
}

func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Anonymous
	s.current = Account{}
}
