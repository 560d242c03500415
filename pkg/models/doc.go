// Package models defines the data types shared between the internal
// packages and any embedding caller: loaded file contents and the
// selection handed to the prompt assembler.
package models
