/*
Package pipeline assembles the cleaners and makes them available by name.

    reg, err := pipeline.New(pipeline.Config{})
    ...
    out, err := reg.Clean("[ZH]你好[ZH]", "zh_ja_mixture_cleaners")

Names are applied in the order given, each cleaner consuming the output of
its predecessor.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pipeline

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Registry holds named cleaners in order of registration.
// Cleaners have to be registered before the registry is used concurrently.
type Registry struct {
	cleaners *linkedhashmap.Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cleaners: linkedhashmap.New()}
}

// Register adds a cleaner, replacing a cleaner of the same name.
func (reg *Registry) Register(name string, cleaner cleaners.Stage) {
	tracer().Debugf("registering cleaner %s", name)
	reg.cleaners.Put(name, cleaner)
}

// Lookup finds a cleaner by name.
func (reg *Registry) Lookup(name string) (cleaners.Stage, bool) {
	c, found := reg.cleaners.Get(name)
	if !found {
		return nil, false
	}
	return c.(cleaners.Stage), true
}

// Names returns the names of all registered cleaners, in order of
// registration.
func (reg *Registry) Names() []string {
	keys := reg.cleaners.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Pipeline composes the cleaners of the given names into a single stage.
// Unknown names result in an error wrapping cleaners.ErrUnknownCleaner.
func (reg *Registry) Pipeline(names ...string) (cleaners.Stage, error) {
	stages := make([]cleaners.Stage, len(names))
	for i, name := range names {
		c, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", cleaners.ErrUnknownCleaner, name)
		}
		stages[i] = c
	}
	return cleaners.Compose(stages...), nil
}

// Clean applies the cleaners of the given names to text, in order.
func (reg *Registry) Clean(text string, names ...string) (string, error) {
	p, err := reg.Pipeline(names...)
	if err != nil {
		return "", err
	}
	return p(text)
}
