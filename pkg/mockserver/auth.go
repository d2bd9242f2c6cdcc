package mockserver

import "net/http"

// getMe returns the session's identity, or a JSON null when there is none.
func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn {
		s.writeJSON(w, http.StatusOK, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, s.identity)
}

// login simulates the provider round-trip: it marks the session active,
// issues the session cookie and bounces the browser back.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.loggedIn = true
	accountId := s.identity.Id
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    accountId,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/auth/me", http.StatusFound)
}

// logout ends the session.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.loggedIn = false
	s.cart = nil
	s.pending = nil
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}
