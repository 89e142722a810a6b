// Package shutil emulates a small set of POSIX shell utilities (cd, pwd,
// mkdir, rmdir, ls, stat, which, whoami and launching a program) as typed,
// fallible Go calls rather than subprocess invocations.
//
// All operations hang off a [Shell], which carries its own working
// directory. Relative paths are resolved against it at call time and the
// working directory of the process itself is never changed, so several
// shells can be used side by side and concurrently.
//
// Failures are reported as wrapped sentinel errors (such as [ErrNotFound]
// or [ErrAlreadyExists]), to be checked with [errors.Is]. The underlying
// operating system error remains reachable with [errors.As].
//
// Process listing (ps), session data (who, w) and shell parsing are not
// provided.
package shutil
