// Package engine contains the core scanning logic for todohawk. It walks a
// source tree provider, classifies marker comments line by line, and returns
// structured findings with aggregate counts. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
