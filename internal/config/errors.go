package config

import "errors"

var ErrNegativeMaxDistance = errors.New("search.max_distance must not be negative")
