package service

var SearchQueries = searchQueries

var MaskKey = maskKey
