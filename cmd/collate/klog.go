// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/plan-systems/klog"
)

// klogHandler forwards slog records to klog. Debug records go to V(1).
type klogHandler struct {
	attrs  []slog.Attr
	groups []string
}

func newKlogHandler() *klogHandler { return &klogHandler{} }

func (h *klogHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *klogHandler) Handle(_ context.Context, r slog.Record) error {
	line := format(r.Message, h.attrs, h.groups, r)
	switch {
	case r.Level >= slog.LevelError:
		klog.ErrorDepth(3, line)
	case r.Level >= slog.LevelWarn:
		klog.WarningDepth(3, line)
	case r.Level >= slog.LevelInfo:
		klog.InfoDepth(3, line)
	default:
		klog.V(1).Info(line)
	}

	return nil
}

func (h *klogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefixed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		prefixed[i] = slog.Attr{Key: qualify(h.groups, a.Key), Value: a.Value}
	}

	return &klogHandler{attrs: append(append([]slog.Attr{}, h.attrs...), prefixed...), groups: h.groups}
}

func (h *klogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &klogHandler{attrs: h.attrs, groups: append(append([]string{}, h.groups...), name)}
}

func qualify(groups []string, key string) string {
	if len(groups) == 0 {
		return key
	}

	return strings.Join(groups, ".") + "." + key
}

// format renders "msg k=v k=v".
func format(msg string, attrs []slog.Attr, groups []string, r slog.Record) string {
	var sb strings.Builder
	sb.WriteString(msg)
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value.Resolve())
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", qualify(groups, a.Key), a.Value.Resolve())
		return true
	})

	return sb.String()
}
