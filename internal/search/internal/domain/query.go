package domain

// QueryMeta 解析 expr 之后得到的查询元数据
type QueryMeta struct {
	// 搜索关键字
	Keyword string
	// 没有指定列的时候搜全部字段
	IsAll bool
	// 指定要搜的列
	Col string
}
