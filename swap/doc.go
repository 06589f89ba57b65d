// Package swap checks hot-swap contracts in Java sources.
//
// A method annotated with @BladeSwap("name") declares that it can stand in
// for the method "name" of the same type. The contract holds when that type
// declares a different method called "name" with the same return type and
// the same parameter types in the same order:
//
//	class Activity {
//	    @BladeSwap("onCreate")
//	    void hookCreate(Bundle state) {}
//
//	    void onCreate(Bundle state) {}
//	}
//
// Only declared types are compared; imports, type aliases and inheritance
// are not resolved. An annotation whose argument is anything other than a
// single string literal is ignored.
//
// [Validate] runs the check over a list of files and reports every
// violation it finds, including files that fail to parse.
package swap
