package main

import "github.com/fatih/color"

// Colors holds the sprintf functions used to colorize outline output.
type Colors struct {
	Header func(string, ...any) string
	Name   func(string, ...any) string
	Key    func(string, ...any) string
	Value  func(string, ...any) string
	Text   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Header: color.RGB(74, 92, 138).SprintfFunc(),
		Name:   color.RGB(128, 168, 196).SprintfFunc(),
		Key:    color.RGB(196, 96, 16).SprintfFunc(),
		Value:  color.RGB(8, 196, 16).SprintfFunc(),
		Text:   color.BlueString,
	}
}
