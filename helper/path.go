package helper

import "strings"

// StandardizePath 标准化路径
func StandardizePath(path string) string {
	// 标准化路径
	cleanPath := path
	if len(cleanPath) > 0 && cleanPath[0] != '/' {
		cleanPath = "/" + cleanPath
	}

	// 处理 Windows 路径分隔符
	cleanPath = strings.ReplaceAll(cleanPath, "\\", "/")

	// 处理多余的 /
	// 使用更安全的方式替换连续的 /，避免可能的死循环
	prevPath := ""
	for prevPath != cleanPath {
		prevPath = cleanPath
		cleanPath = strings.ReplaceAll(cleanPath, "//", "/")
	}

	return cleanPath
}

// SplitMenuPath 将菜单路径拆分为非空的段，去掉首尾的 /
func SplitMenuPath(path string) []string {
	clean := strings.Trim(StandardizePath(path), "/")
	if clean == "" {
		return nil
	}
	return strings.Split(clean, "/")
}

// JoinMenuPath 连接菜单路径段，空段被忽略
func JoinMenuPath(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		segments = append(segments, SplitMenuPath(part)...)
	}
	return strings.Join(segments, "/")
}

// ParentMenuPath 返回上一级菜单路径，顶层路径的上级为空串
func ParentMenuPath(path string) string {
	segments := SplitMenuPath(path)
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], "/")
}

// LastMenuPathElement 返回路径最后一段，没有 / 时返回整个路径
func LastMenuPathElement(path string) string {
	segments := SplitMenuPath(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
