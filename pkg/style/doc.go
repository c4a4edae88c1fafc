// Package style turns per-node style declarations into reusable CSS classes.
//
// A Declaration is one property:value pair, optionally scoped by a media
// query and wrapped in selector fragments. Declarations are comparable
// values; two declarations are the same only if all six fields match.
//
// # Generators
//
// A Generator receives the declarations of one node and returns the class
// names that node should carry. After the tree has been rendered, the
// aggregate stylesheet is available from Stylesheet.
//
// Two policies are provided:
//
//   - ClassGenerator emits one class per distinct declaration.
//   - GroupedGenerator emits one class per distinct declaration set.
//
// Class names are positional, so rendering the same tree in the same order
// always yields the same classes and the same stylesheet.
//
//	gen := style.NewClassGenerator()
//	classes := gen.Generate([]style.Declaration{
//	    style.Decl("color", "red"),
//	    style.Decl("background", "white", style.Media(style.Screen)),
//	})
//	css := gen.Stylesheet()
//
// Generators are safe for concurrent use.
package style
