package integration_testing

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const (
	serverPort  = 9000
	metricsPort = "9001"
	serverHost  = "localhost"
	testDBName  = "fittrack_integration"
	// low on purpose, the login rate limit test exhausts it
	loginAllowedPerMin = 3
)

var serverEndpoint = "http://" + net.JoinHostPort(serverHost, strconv.Itoa(serverPort))

type Suite struct {
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

// newSuite starts mongo and redis containers and a server wired to them.
func newSuite(ctx context.Context) (_ *Suite, err error) {
	suite := &Suite{
		teardown: make([]func(), 0),
	}
	defer func() {
		if err != nil {
			suite.cleanup()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	suite.dockerPool.MaxWait = 2 * time.Minute

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup redis: %w", err)
	}

	mongoPort, err := suite.mongoSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup mongo: %w", err)
	}

	cfg := getTestConfig(redisPort, mongoPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)

	return suite, suite.waitForServer()
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func (s *Suite) waitForServer() error {
	return s.dockerPool.Retry(func() error {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(serverHost, strconv.Itoa(serverPort)), time.Second)
		if err != nil {
			return err
		}
		return conn.Close()
	})
}

func getTestConfig(redisPort, mongoPort string) *config.Config {
	return &config.Config{
		Environment:                 "test",
		Host:                        serverHost,
		Port:                        serverPort,
		LogLevel:                    "debug",
		MongoURI:                    "mongodb://" + net.JoinHostPort("localhost", mongoPort),
		MongoDBName:                 testDBName,
		MongoConnectTimeout:         5,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PrometheusMetricsHost:       serverHost,
		PrometheusMetricsPort:       metricsPort,
		LoginRateLimitAllowedPerMin: loginAllowedPerMin,
		CorsAllowedOrigins:          []string{"*"},
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			log.Errorf("close redis container: %s", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	err = s.dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", redisPort)})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	})
	if err != nil {
		return "", fmt.Errorf("ping redis: %w", err)
	}

	return redisPort, nil
}

func (s *Suite) mongoSetup() (string, error) {
	mongoResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run mongo: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := mongoResource.Close(); err != nil {
			log.Errorf("close mongo container: %s", err)
		}
	})

	mongoPort := mongoResource.GetPort("27017/tcp")
	err = s.dockerPool.Retry(func() error {
		ctx := context.Background()
		client, _, err := db.NewMongoDB(ctx, db.NewMongoClientParams{
			URI:            "mongodb://" + net.JoinHostPort("localhost", mongoPort),
			DBName:         testDBName,
			ConnectTimeout: 2 * time.Second,
		})
		if err != nil {
			return err
		}
		return client.Disconnect(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("ping mongo: %w", err)
	}

	return mongoPort, nil
}
