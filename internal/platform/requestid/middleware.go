package requestid

import (
	"crypto/rand"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const HeaderKey = "X-Request-Id"

// CtxKey: ハンドラ側からリクエストIDを参照する際のキー
const CtxKey = "request_id"

// New はリクエスト毎にULIDを採番してヘッダとcontextへ載せる。
// ログとクライアント側の問い合わせを突き合わせるための識別子で、追跡以上の意味はない。
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderKey)
		if id == "" {
			id = ulid.MustNew(ulid.Now(), rand.Reader).String()
		}
		c.Set(CtxKey, id)
		c.Header(HeaderKey, id)
		c.Next()
	}
}
