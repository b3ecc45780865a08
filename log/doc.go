/*
Package log implements the numbase logging framework on top of seelog.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
different logging levels.

Logging is disabled until Init (or UseLogger/SetLogWriter) is called, so the
numeric packages stay silent when used as a library.

Error conditions are logged once, as early as possible: errors returned by
other packages are wrapped in a log.Error() call, own errors are created with
log.Error[f](). If we call panic() we create the error for that with
log.Critical[f]().
*/
package log
