package pets

import "context"

// Exists y Names exponen lo mínimo que appointments y health necesitan de pets,
// sin que esos paquetes importen este.
func (s *Service) Exists(ctx context.Context, id int64) bool {
	_, err := s.GetByID(ctx, id)
	return err == nil
}

// Names devuelve id -> nombre de todas las mascotas.
func (s *Service) Names(ctx context.Context) map[int64]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]string, len(s.items))
	for _, p := range s.items {
		out[p.ID] = p.Name
	}
	return out
}
