package influxdb

import (
	"os"
	"time"

	"github.com/theblacknight/raycast2d/common/utils"

	"github.com/influxdata/influxdb/client/v2"
)

// Client batches application metrics towards influxdb. Without INFLUXDB_ADDR
// and INFLUXDB_DB in the environment it degrades to a stub that logs the
// metrics instead of shipping them.
type Client struct {
	isStub bool

	appName     string
	influxdb    client.Client
	batchpoints client.BatchPoints
	ticker      *time.Ticker
}

func NewClient(appName string) (*Client, error) {
	res := &Client{
		isStub:  true,
		appName: appName,
		ticker:  time.NewTicker(5 * time.Second),
	}

	addr := os.Getenv("INFLUXDB_ADDR")
	db := os.Getenv("INFLUXDB_DB")

	if addr == "" && db == "" {
		utils.Debug("influxdb", "No client has been configured")
		return res, nil
	}

	influxdbClient, err := client.NewHTTPClient(client.HTTPConfig{
		Addr: addr,
	})
	if err != nil {
		return res, err
	}

	batchpoints, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database: db,
	})
	if err != nil {
		return res, err
	}

	utils.Debug("influxdb", "Influxdb reporting is enabled")

	res.isStub = false
	res.influxdb = influxdbClient
	res.batchpoints = batchpoints

	return res, nil
}

// WriteAppMetric pushes one point tagged with the application name.
func (c *Client) WriteAppMetric(name string, fields map[string]interface{}) {
	if c.isStub {
		context := make(utils.Context, len(fields))
		for k, v := range fields {
			context[k] = v
		}

		utils.DebugWith("influxdb", name, context)
		return
	}

	tags := map[string]string{"app": c.appName}

	pt, err := client.NewPoint(name, tags, fields, time.Now())
	if err != nil {
		panic(err.Error())
	}

	c.batchpoints.AddPoint(pt)
	c.influxdb.Write(c.batchpoints)
}

// Loop invokes fn every five seconds until TearDown.
func (c *Client) Loop(fn func()) {
	go func() {
		for range c.ticker.C {
			fn()
		}
	}()
}

func (c *Client) TearDown() {
	c.ticker.Stop()
}
