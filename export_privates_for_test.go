// SPDX-License-Identifier: MIT
// Package mat2d: white-box exports for tests only.
// This file re-exports selected private helpers so the external test package
// can exercise them directly without widening the public API.

package mat2d

// BroadcastShapesForTest exposes broadcastShapes to the test package.
var BroadcastShapesForTest = broadcastShapes
