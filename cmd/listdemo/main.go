package main

import (
	"errors"
	"flag"
	"fmt"

	"ownlist/list"
	"ownlist/log"
)

func main() {
	level := flag.String("level", "debug", "log level: trace|debug|info|warn|error")
	flag.Parse()

	logger := log.New()
	logger.SetLevel(*level)

	l := list.Measure[int](list.New[int]())

	logger.Info("append 10, 20, 30")
	l.Append(10)
	l.Append(20)
	l.Append(30)
	fmt.Println(l)

	logger.Info("prepend 5")
	l.Prepend(5)
	fmt.Println(l)

	logger.Info("insert 15 at index 2")
	if _, err := l.InsertAt(15, 2); err != nil {
		logger.Fatal("insert: %v", err)
	}
	fmt.Println(l)

	v, err := l.RemoveAt(2)
	if err != nil {
		logger.Fatal("remove: %v", err)
	}
	logger.Debug("removed %d at index 2", v)

	v, err = l.Pop()
	if err != nil {
		logger.Fatal("pop: %v", err)
	}
	logger.Debug("popped %d", v)
	fmt.Println(l)

	logger.Info("size=%d find(20)=%d contains(42)=%t", l.Size(), l.Find(20), l.Contains(42))

	head, err := l.Head()
	if err != nil {
		logger.Fatal("head: %v", err)
	}
	tail, err := l.Tail()
	if err != nil {
		logger.Fatal("tail: %v", err)
	}
	logger.Info("head=%d (node %s), tail=%d", head.Value(), head.ID(), tail.Value())

	if _, err := l.At(99); errors.Is(err, list.ErrIndexOutOfBounds) {
		logger.Warn("expected failure: %v", err)
	}

	l.Each(func(index int, v int) bool {
		logger.Debug("walk index=%d value=%d", index, v)
		return true
	})

	l.Clear()
	fmt.Println(l)
}
