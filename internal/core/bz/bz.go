package bz

// 业务 ID 前缀，配合 uniqueid 生成带语义的主键
const (
	IDPrefixEvent = "ev"
	IDPrefixClip  = "cl"
)
