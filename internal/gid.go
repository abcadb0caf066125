package internal

import "github.com/petermattis/goid"

func getGID() int64 {
	return goid.Get()
}
