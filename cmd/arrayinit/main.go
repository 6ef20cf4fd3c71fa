package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/arrayinit/bootstrap"
	"github.com/fulldump/arrayinit/configuration"
)

var banner = `
                            _       _ _   
  __ _ _ __ _ __ __ _ _   _(_)_ __ (_) |_ 
 / _' | '__| '__/ _' | | | | | '_ \| | __|
| (_| | |  | | | (_| | |_| | | | | | | |_ 
 \__,_|_|  |_|  \__,_|\__, |_|_| |_|_|\__|
                      |___/   version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(c)
	start()
}
