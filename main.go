//go:build windows

// Command minigl is a software CPU implementation of a subset of the
// legacy fixed-function OpenGL 1.x pipeline, built as a Windows
// c-shared library that stands in for opengl32.dll. It is loaded by an
// unmodified legacy game binary; main never runs any code of its own.
package main

import "C"

func main() {}
