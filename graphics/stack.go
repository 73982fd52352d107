// seehuhn.de/go/pdfdraw - generate PDF content streams from drawing calls
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

// Stack holds the saved graphics states, indexed by depth.
// The zero value is an empty stack.
type Stack struct {
	states []State
}

// Push saves s and returns the new depth of the stack.
// Since State contains no references, the stored value is independent of
// s.
func (s *Stack) Push(state State) int {
	s.states = append(s.states, state)
	return len(s.states)
}

// Pop removes and returns the top-most state.
// Pop panics if the stack is empty.
func (s *Stack) Pop() State {
	n := len(s.states) - 1
	state := s.states[n]
	s.states = s.states[:n]
	return state
}

// Len returns the number of saved states.
func (s *Stack) Len() int {
	return len(s.states)
}

// find returns the depth of the top-most state carrying the token,
// or 0 if there is no such state.
func (s *Stack) find(tok StateToken) int {
	for i := len(s.states) - 1; i >= 0; i-- {
		if s.states[i].Token == tok {
			return i + 1
		}
	}
	return 0
}
