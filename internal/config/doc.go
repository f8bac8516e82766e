// The config package encapsulates configuration for the fmtlint command.
//
// Configuration lives in a dedicated base directory. When loading the
// configuration, the first and only argument is the path to the base
// directory rather than the path to the configuration file. The designated
// directory may contain a file called 'config' with one "key value" pair per
// line; blank lines and lines starting with '#' are ignored. Keys that are
// absent keep their defaults, and so does everything if the file is absent.
package config
