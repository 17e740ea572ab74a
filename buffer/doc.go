// SPDX-License-Identifier: MIT

// Package buffer provides Fixed, a flat zero-filled storage block of a single
// element type whose length is chosen once at construction.
//
// Purpose:
//   - Give containers an exclusively owned, contiguous backing store.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Keep copies explicit: Clone is the only way to duplicate storage.
//
// Complexity quicksheet:
//   - NewFixed: O(n) zero-init; At/Set/Ref: O(1); Clone/Values: O(n).
package buffer
