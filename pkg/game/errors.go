package game

import "errors"

var errNoSceneFactory = errors.New("scene factory not set")
