// SPDX-License-Identifier: MIT

package archive

import "time"

// SetClock replaces the time source used by Put.
func (s *Store) SetClock(now func() time.Time) { s.now = now }
