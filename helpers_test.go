package flowpipe

import "time"

func timeout() time.Duration { return 5 * time.Second }
func tick() time.Duration    { return 5 * time.Millisecond }
