//go:build !qdebug

package quantum

const assertNormalization = false
