// Package registry is the capability object through which the engine reaches
// every algorithm it does not implement itself.
//
// A Registry maps a method name and a data mode to a strategy: weighting,
// assessment, correlation, normalization, distance, defuzzification,
// preference function, expert function or plot renderer. Strategies are
// contributed by Module implementations during application startup, and the
// engine only ever looks them up. Tests build registries populated with
// fakes; production code registers the bundled modules.
//
// Registration is strict: registering the same name and mode twice panics,
// because that is always a programming error in the module list.
package registry
