/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	clfTimeLayout      = "02/Jan/2006:15:04:05 -0700"
	healthCheckPathTag = "/health/"
)

// AccessLogHandler writes one Apache CLF line per request, suffixed with the response time in
// milliseconds. Health checks are logged at debug level and server errors at warn level.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	accessLogger := logger.With(String(LoggerKeyComponentName, "AccessLog"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)
		elapsed := time.Since(start)

		line := clfLine(r, start, recorder.statusCode, recorder.size, elapsed)
		fields := []Field{Int("status", recorder.statusCode), Duration("elapsed", elapsed)}
		switch {
		case recorder.statusCode >= http.StatusInternalServerError:
			accessLogger.Warn(line, fields...)
		case strings.HasPrefix(r.URL.Path, healthCheckPathTag):
			accessLogger.Debug(line, fields...)
		default:
			accessLogger.Info(line, fields...)
		}
	})
}

// clfLine formats a request as `host - - [time] "METHOD URI PROTO" status size millis`.
func clfLine(r *http.Request, start time.Time, status, size int, elapsed time.Duration) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d %d`, host, start.Format(clfTimeLayout),
		r.Method, r.RequestURI, r.Proto, status, size, elapsed.Milliseconds())
}

// loggingResponseWriter records the status code and body size written by the wrapped handler.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}
