// SPDX-License-Identifier: EPL-2.0

// Package gate implements the access-code prompt shown before the
// monitor view. Its policy is deliberately quirky and preserved
// exactly: the first two submissions always fail, the code only
// counts from the third attempt, and a successful match locks the
// gate and transitions after a fixed delay. It is an obstacle for
// casual visitors, not an authentication mechanism.
package gate
