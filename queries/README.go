/*
Package queries

Summary

This package holds the catalogue of reporting queries that run over the shop's data.
Each query is a method of Service, fetches the collection it needs from the DataSource,
then evaluates a single pipeline of filter, map, sort, reduce or group steps over it.

Queries log their result at debug level, so a Service with a debug logger doubles as a report tool.

Minimum Requirement

A DataSource that returns complete orders, meaning every order holds its customer and its products by value.
*/
package queries
