package session

import (
	"sync"

	"payout-bot/internal/domain"
)

// Store guarda las sesiones de conversación en memoria, una por usuario.
// Las mutaciones de una misma sesión se serializan con un lock por usuario;
// turnos de usuarios distintos avanzan en paralelo.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*entry
}

type entry struct {
	mu      sync.Mutex
	session domain.Session
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*entry)}
}

func (s *Store) lookup(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[userID]
	if !ok {
		e = &entry{session: domain.Session{
			UserID: userID,
			ChatID: userID,
			State:  domain.StateNone,
		}}
		s.sessions[userID] = e
	}
	return e
}

// Get devuelve una copia de la sesión del usuario, creándola si no existe.
func (s *Store) Get(userID int64) domain.Session {
	e := s.lookup(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Update aplica fn sobre la sesión bajo el lock del usuario y devuelve la
// copia resultante. fn siempre ve el estado más reciente, por lo que una
// mutación concurrente del mismo usuario nunca se pierde.
func (s *Store) Update(userID int64, fn func(*domain.Session)) domain.Session {
	e := s.lookup(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.session)
	// La identidad no cambia nunca, haga lo que haga fn.
	e.session.UserID = userID
	return e.session
}

// Clear elimina la sesión del usuario; el siguiente acceso crea una nueva
// en el estado inicial.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
