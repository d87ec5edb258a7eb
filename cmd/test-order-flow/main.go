package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// 冒烟测试：对运行中的服务端走一遍 注册 -> 加购 -> 再加购 -> 结算。
// 需要先启动 cmd/web。
func main() {
	base := flag.String("base", "http://127.0.0.1:8080", "服务地址")
	flag.Parse()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar:     jar,
		Timeout: 10 * time.Second,
	}

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())

	// 1. 注册（注册即登录）
	postForm(client, *base+"/auth/register", url.Values{
		"username": {"smoke"},
		"email":    {email},
		"password": {"smoke123"},
	})
	log.Printf("registered %s", email)

	// 2. 同一商品加购两次，应合并为一行
	postForm(client, *base+"/cart/cart/add/1", url.Values{"quantity": {"2"}})
	postForm(client, *base+"/cart/cart/add/1", url.Values{"quantity": {"3"}})
	log.Println("added product 1 twice (qty 2 + 3)")

	// 3. 结算
	postForm(client, *base+"/checkout/checkout", url.Values{})
	log.Println("checkout submitted")

	// 4. 购物车应为空
	resp, err := client.Get(*base + "/cart/cart")
	if err != nil {
		log.Fatalf("view cart failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("view cart status %d", resp.StatusCode)
	}
	log.Println("order flow OK")
}

func postForm(client *http.Client, target string, values url.Values) {
	resp, err := client.Post(target, "application/x-www-form-urlencoded",
		strings.NewReader(values.Encode()))
	if err != nil {
		log.Fatalf("POST %s failed: %v", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		log.Fatalf("POST %s status %d", target, resp.StatusCode)
	}
}
