// Package kbbiwords builds a filtered KBBI word-list file. It downloads
// a newline-delimited Indonesian word list, keeps the purely alphabetic
// words of a given length range, and writes them to a single-key JSON
// document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/).
package kbbiwords
