package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page      int
	PageSize  int
	Search    string
	Category  string
	Color     string
	Size      string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating float64
	Sort      string
	IDs       []string
}

// ProductReviewListFilter 查询商品评论列表的过滤条件
type ProductReviewListFilter struct {
	ProductID string
	Page      int
	PageSize  int
}
