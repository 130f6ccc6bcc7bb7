package main

import "github.com/todohawk/todohawk/cmd/todohawk"

func main() { todohawk.Execute() }
