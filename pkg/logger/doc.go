// Package logger builds log/slog loggers for formkit components and provides
// attribute helpers for the domain keys they log (form, field, route, state,
// notification_id).
//
//	log := logger.NewFromConfig(cfg)
//	log.Info("field validated", logger.Form("registration"), logger.Field("email"), logger.State("valid"))
//
// Development environments log text at debug level; production and staging
// log JSON at info level. LOG_LEVEL and LOG_FORMAT override either default.
package logger
