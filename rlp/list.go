// Copyright 2022 The go-rlp Authors
// This file is part of the go-rlp library.
//
// The go-rlp library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-rlp library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-rlp library. If not, see <http://www.gnu.org/licenses/>.

package rlp

// InList calls fn between List and ListEnd. If fn fails, the error is
// returned and the list is left open.
func (w EncoderBuffer) InList(fn func() error) error {
	l := w.List()
	if err := fn(); err != nil {
		return err
	}
	w.ListEnd(l)
	return nil
}

// EncodeListToBuffer writes vals to w as a single RLP list, encoding each
// element the way Encode does.
func EncodeListToBuffer[T any](w EncoderBuffer, vals []T) error {
	return w.InList(func() error {
		for _, v := range vals {
			if err := Encode(w, v); err != nil {
				return err
			}
		}
		return nil
	})
}
