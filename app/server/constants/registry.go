package constants

const RegistryPageSize = 20

// 列表可用的排序字段，第一个为默认值
var RegistrySortKeys = []string{"issued_at", "org_name", "serial"}

const (
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)
