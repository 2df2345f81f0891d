package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type verifyRequest struct {
	Password string `json:"password"`
}

// RegisterRoutes は管理画面ログイン用のパスワード確認エンドポイントを登録する。
// ここはゲート対象外（ログイン前に呼ばれるため）。シークレット未設定時は
// 照合対象が存在しないので常に401を返す（空パスワードで成功させない）。
func RegisterRoutes(r gin.IRoutes, secret string) {
	r.POST("/admin/verify", func(c *gin.Context) {
		var req verifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
		if secret == "" ||
			subtle.ConstantTimeCompare([]byte(req.Password), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
